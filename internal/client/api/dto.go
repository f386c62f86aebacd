package api

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the success envelope of POST /auth/login. The backend
// wraps the payload twice: {data:{loginV2:{token, user}}}.
type LoginResponse struct {
	Data LoginData `json:"data"`
}

type LoginData struct {
	LoginV2 LoginPayload `json:"loginV2"`
}

type LoginPayload struct {
	Token string     `json:"token"`
	User  RemoteUser `json:"user"`
}

// RemoteUser is the backend's user shape. Field names follow the wire
// contract, not the domain model; mapping happens in the service layer.
type RemoteUser struct {
	UUID    string   `json:"uuid"`
	Email   string   `json:"email"`
	Roles   []string `json:"roles"`
	Lang    string   `json:"lang"`
	Enabled bool     `json:"enabled"`
}
