package request

type AdminAuthRequest struct {
	Password string `json:"password" binding:"required"`
}
