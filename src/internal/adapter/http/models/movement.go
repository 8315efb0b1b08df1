package models

import (
	"time"

	"github.com/api-sage/virtual-teller/src/internal/domain"
)

type MovementResponse struct {
	ID                 string `json:"id"`
	Timestamp          string `json:"timestamp"`
	Kind               string `json:"kind"`
	Amount             string `json:"amount"`
	Description        string `json:"description"`
	CounterpartyNumber string `json:"counterpartyAccountNumber,omitempty"`
	TransferID         string `json:"transferId,omitempty"`
}

func NewMovementResponses(movements []domain.Movement) []MovementResponse {
	out := make([]MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, MovementResponse{
			ID:                 m.ID,
			Timestamp:          m.Timestamp.UTC().Format(time.RFC3339Nano),
			Kind:               string(m.Kind),
			Amount:             FormatMoney(m.Amount),
			Description:        m.Description,
			CounterpartyNumber: m.CounterpartyNumber,
			TransferID:         m.TransferID,
		})
	}
	return out
}

type WelcomeResponse struct {
	Service string `json:"service"`
	Version string `json:"version"`
}
