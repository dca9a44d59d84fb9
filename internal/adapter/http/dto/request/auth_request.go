package request

// LoginRequest is the tenant sign-in form.
type LoginRequest struct {
	RoomNumber string `json:"room_number" binding:"required"`
	Passcode   string `json:"passcode" binding:"required"`
}

type ChangePasscodeRequest struct {
	Passcode string `json:"passcode" binding:"required"`
}
