package httpapi

import (
	"encoding/json"
	"net/http"

	"sleevescout/internal/wage"
)

type wageRequest struct {
	Mode   string            `json:"mode"`
	Inputs map[string]string `json:"inputs"`
}

type wageOK struct {
	OK     bool         `json:"ok"`
	Result *wage.Result `json:"result"`
}

type wageFailed struct {
	OK             bool     `json:"ok"`
	Code           string   `json:"code"`
	Message        string   `json:"error"`
	RequiredInputs []string `json:"required_inputs,omitempty"`
}

func (s *Server) handleWageCalculate(w http.ResponseWriter, r *http.Request) {
	var req wageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	result, calcErr := wage.Calculate(req.Mode, req.Inputs)
	if calcErr != nil {
		writeJSON(w, http.StatusBadRequest, wageFailed{
			Code:           calcErr.Code,
			Message:        calcErr.Message,
			RequiredInputs: calcErr.RequiredInputs,
		})
		return
	}
	writeJSON(w, http.StatusOK, wageOK{OK: true, Result: result})
}
