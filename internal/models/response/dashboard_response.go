package response

// DashboardResponse represents the warden occupancy dashboard
type DashboardResponse struct {
	TotalRooms            int64               `json:"total_rooms" example:"20"`
	TotalCapacity         int64               `json:"total_capacity" example:"80"`
	TotalOccupancy        int64               `json:"total_occupancy" example:"55"`
	FreeSlots             int64               `json:"free_slots" example:"25"`
	RoomsUnderMaintenance int64               `json:"rooms_under_maintenance" example:"2"`
	TotalStudents         int64               `json:"total_students" example:"55"`
	Rooms                 []RoomOccupancyItem `json:"rooms"`
}

// RoomOccupancyItem is a per-room row on the dashboard
type RoomOccupancyItem struct {
	RoomID           uint   `json:"room_id" example:"1"`
	Number           string `json:"number" example:"A-101"`
	Capacity         int    `json:"capacity" example:"4"`
	CurrentOccupancy int    `json:"current_occupancy" example:"3"`
	UnderMaintenance bool   `json:"under_maintenance" example:"false"`
}
