// Package api exposes the booking desk over HTTP.
package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/elektrokombinacija/hotel-alloc/internal/booking"
	"github.com/elektrokombinacija/hotel-alloc/internal/core"
)

// Room is the wire form of a room and its status.
type Room struct {
	ID       string `json:"id" doc:"Room ID"`
	Number   int    `json:"number" doc:"Display number"`
	Floor    int    `json:"floor"`
	Position int    `json:"position" doc:"Rooms from the stairs/lift, starting at 1"`
	Status   string `json:"status" enum:"available,occupied,booked"`
}

// Booking is the wire form of an accepted allocation.
type Booking struct {
	ID            string `json:"id"`
	Rooms         []int  `json:"rooms" doc:"Room numbers in floor/position order"`
	TravelMinutes int    `json:"travelMinutes" doc:"Travel time between first and last room"`
	Strategy      string `json:"strategy" enum:"same-floor,cross-floor"`
}

// Summary counts rooms by status.
type Summary struct {
	Available int `json:"available"`
	Occupied  int `json:"occupied"`
	Booked    int `json:"booked"`
}

type RoomsResponse struct {
	Body struct {
		Rooms   []Room  `json:"rooms"`
		Summary Summary `json:"summary"`
	}
}

type RoomResponse struct {
	Body Room
}

type BookingResponse struct {
	Body Booking
}

type SummaryResponse struct {
	Body Summary
}

type BookRequest struct {
	Body struct {
		Count int `json:"count" minimum:"1" doc:"Number of rooms to book"`
	}
}

type ToggleRequest struct {
	RoomID string `path:"roomId" doc:"Room ID"`
}

// Handler serves desk operations.
type Handler struct {
	desk *booking.Desk
}

// NewHandler creates a handler for a desk.
func NewHandler(desk *booking.Desk) *Handler {
	return &Handler{desk: desk}
}

// Register adds all operations to the API.
func Register(api huma.API, h *Handler) {
	huma.Register(api, huma.Operation{
		OperationID: "listRooms",
		Method:      http.MethodGet,
		Path:        "/rooms",
		Summary:     "List rooms",
		Description: "List every room with its current status",
		Tags:        []string{"rooms"},
	}, h.ListRooms)

	huma.Register(api, huma.Operation{
		OperationID: "toggleRoom",
		Method:      http.MethodPost,
		Path:        "/rooms/{roomId}/toggle",
		Summary:     "Toggle occupancy",
		Description: "Flip a room between available and occupied. Booked rooms cannot be toggled.",
		Tags:        []string{"rooms"},
	}, h.ToggleRoom)

	huma.Register(api, huma.Operation{
		OperationID:   "bookRooms",
		Method:        http.MethodPost,
		Path:          "/bookings",
		Summary:       "Book rooms optimally",
		Description:   "Book the available rooms with the least travel time, preferring a single floor",
		Tags:          []string{"bookings"},
		DefaultStatus: http.StatusCreated,
	}, h.Book)

	huma.Register(api, huma.Operation{
		OperationID: "currentBooking",
		Method:      http.MethodGet,
		Path:        "/bookings/current",
		Summary:     "Current booking",
		Tags:        []string{"bookings"},
	}, h.CurrentBooking)

	huma.Register(api, huma.Operation{
		OperationID: "randomizeOccupancy",
		Method:      http.MethodPost,
		Path:        "/occupancy/randomize",
		Summary:     "Random occupancy",
		Description: "Randomly occupy rooms and clear bookings",
		Tags:        []string{"occupancy"},
	}, h.Randomize)

	huma.Register(api, huma.Operation{
		OperationID: "resetOccupancy",
		Method:      http.MethodPost,
		Path:        "/occupancy/reset",
		Summary:     "Reset all",
		Description: "Make every room available and clear bookings",
		Tags:        []string{"occupancy"},
	}, h.Reset)
}

// ListRooms returns all rooms in inventory order.
func (h *Handler) ListRooms(ctx context.Context, input *struct{}) (*RoomsResponse, error) {
	snap, err := h.desk.Snapshot()
	if err != nil {
		return nil, huma.Error500InternalServerError("snapshot failed", err)
	}

	resp := &RoomsResponse{}
	for _, r := range h.desk.Inventory().Rooms {
		resp.Body.Rooms = append(resp.Body.Rooms, toRoom(r, snap.Status[r.ID]))
	}
	resp.Body.Summary = summarize(&snap)
	return resp, nil
}

// ToggleRoom flips one room's occupancy.
func (h *Handler) ToggleRoom(ctx context.Context, input *ToggleRequest) (*RoomResponse, error) {
	id := core.RoomID(input.RoomID)
	status, err := h.desk.Toggle(id)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &RoomResponse{Body: toRoom(h.desk.Inventory().RoomByID(id), status)}, nil
}

// Book allocates rooms.
func (h *Handler) Book(ctx context.Context, input *BookRequest) (*BookingResponse, error) {
	b, err := h.desk.Book(input.Body.Count)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &BookingResponse{Body: toBooking(b)}, nil
}

// CurrentBooking returns the most recent booking.
func (h *Handler) CurrentBooking(ctx context.Context, input *struct{}) (*BookingResponse, error) {
	b := h.desk.LastBooking()
	if b == nil {
		return nil, huma.Error404NotFound("no booking yet")
	}
	return &BookingResponse{Body: toBooking(b)}, nil
}

// Randomize randomizes occupancy.
func (h *Handler) Randomize(ctx context.Context, input *struct{}) (*SummaryResponse, error) {
	h.desk.Randomize()
	return h.summary()
}

// Reset clears everything.
func (h *Handler) Reset(ctx context.Context, input *struct{}) (*SummaryResponse, error) {
	h.desk.Reset()
	return h.summary()
}

func (h *Handler) summary() (*SummaryResponse, error) {
	snap, err := h.desk.Snapshot()
	if err != nil {
		return nil, huma.Error500InternalServerError("snapshot failed", err)
	}
	return &SummaryResponse{Body: summarize(&snap)}, nil
}

func summarize(s *booking.State) Summary {
	return Summary{
		Available: s.Count(core.Available),
		Occupied:  s.Count(core.Occupied),
		Booked:    s.Count(core.Booked),
	}
}

func toRoom(r *core.Room, status core.Status) Room {
	return Room{
		ID:       string(r.ID),
		Number:   r.Number,
		Floor:    r.Floor,
		Position: r.Position,
		Status:   status.String(),
	}
}

func toBooking(b *booking.Booking) Booking {
	return Booking{
		ID:            b.ID,
		Rooms:         b.Numbers(),
		TravelMinutes: b.Cost,
		Strategy:      b.Strategy.String(),
	}
}

// toHumaError maps desk errors to HTTP errors.
func toHumaError(err error) error {
	switch {
	case errors.Is(err, booking.ErrInvalidCount):
		return huma.Error400BadRequest(err.Error())
	case errors.Is(err, booking.ErrUnknownRoom):
		return huma.Error404NotFound(err.Error())
	case errors.Is(err, booking.ErrNotEnoughRooms),
		errors.Is(err, booking.ErrNoCombination),
		errors.Is(err, booking.ErrRoomBooked):
		return huma.Error409Conflict(err.Error())
	default:
		return huma.Error500InternalServerError("internal error", err)
	}
}
