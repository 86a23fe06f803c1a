package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type GateStatusEntry struct {
	Name    string `json:"name"`
	Version int    `json:"version"`
}

type AccessStatusResponse struct {
	Gates []GateStatusEntry `json:"gates"`
}

type AccessCheckRequest struct {
	Passcode string `json:"passcode"`
}

type AccessCheckResponse struct {
	OK      bool   `json:"ok"`
	Name    string `json:"name"`
	Version int    `json:"version"`
}

type RotateGateRequest struct {
	Name        string `json:"name,omitempty"`
	NewPasscode string `json:"new_passcode"`
}
