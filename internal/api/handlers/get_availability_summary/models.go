package get_availability_summary

import (
	"github.com/m04kA/SMC-SlotService/internal/domain"
	"github.com/m04kA/SMC-SlotService/pkg/types"
)

// DaySummaryResponse счетчики слотов одной даты
type DaySummaryResponse struct {
	Date      string `json:"date"`
	Available int    `json:"available"`
	Booked    int    `json:"booked"`
	Total     int    `json:"total"`
}

// SummaryResponse HTTP response model. Даты без слотов не попадают в days.
type SummaryResponse struct {
	MerchantID int64                `json:"merchantId"`
	From       string               `json:"from"`
	To         string               `json:"to"`
	Days       []DaySummaryResponse `json:"days"`
}

// FromDomainSummary конвертирует сводку в HTTP response (даты по возрастанию)
func FromDomainSummary(merchantID int64, from, to types.Date, summary domain.AvailabilitySummary) *SummaryResponse {
	resp := &SummaryResponse{
		MerchantID: merchantID,
		From:       from.String(),
		To:         to.String(),
		Days:       make([]DaySummaryResponse, 0, len(summary)),
	}

	for _, date := range summary.Dates() {
		counts := summary[date]
		resp.Days = append(resp.Days, DaySummaryResponse{
			Date:      date.String(),
			Available: counts.Available,
			Booked:    counts.Booked,
			Total:     counts.Total(),
		})
	}

	return resp
}
