package response

type AdminAuthResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}
