package response

// RoomResponse represents a room with its computed availability
type RoomResponse struct {
	ID               uint   `json:"id" example:"1"`
	Number           string `json:"number" example:"A-101"`
	Capacity         int    `json:"capacity" example:"4"`
	CurrentOccupancy int    `json:"current_occupancy" example:"2"`
	UnderMaintenance bool   `json:"under_maintenance" example:"false"`
	Available        bool   `json:"available" example:"true"`
}
