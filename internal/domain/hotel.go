package domain

type Hotel struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Location       string `json:"location"`
	TotalRooms     int    `json:"total_rooms"`
	AvailableRooms int    `json:"available_rooms"` // 0 <= available <= total
	Email          string `json:"email"`
}

type HotelInput struct {
	Name       string
	Location   string
	TotalRooms int
	Email      string
}

// HotelPatch carries the fields to change; nil fields are left as they are.
type HotelPatch struct {
	Name       *string
	Location   *string
	TotalRooms *int
	Email      *string
}

type Customer struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
}

type CustomerInput struct {
	Name  string
	Phone string
	Email string // optional
}

type CustomerPatch struct {
	Name  *string
	Phone *string
	Email *string
}
