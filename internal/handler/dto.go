package handler

import (
	"time"

	"github.com/avc-dev/tinyapp/internal/model"
)

type errorResponse struct {
	Error string `json:"error"`
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type linkResponse struct {
	ShortCode      string    `json:"short_code"`
	ShortURL       string    `json:"short_url"`
	LongURL        string    `json:"long_url"`
	CreatedAt      time.Time `json:"created_at"`
	TotalVisits    int64     `json:"total_visits"`
	UniqueVisitors int64     `json:"unique_visitors"`
}

type visitResponse struct {
	VisitorID string    `json:"visitor_id"`
	Timestamp time.Time `json:"timestamp"`
	Day       string    `json:"day"`
	Time      string    `json:"time"`
}

type linkDetailsResponse struct {
	linkResponse
	Visits []visitResponse `json:"visits"`
}

type deleteLinksResponse struct {
	Deleted []string `json:"deleted"`
}

func (h *Handler) toLinkResponse(link *model.Link) linkResponse {
	return linkResponse{
		ShortCode:      link.ShortCode.String(),
		ShortURL:       h.cfg.BaseURL.ShortLink(link.ShortCode.String()),
		LongURL:        link.LongURL.String(),
		CreatedAt:      link.CreatedAt,
		TotalVisits:    link.TotalVisits,
		UniqueVisitors: link.UniqueVisitors,
	}
}

func (h *Handler) toLinkDetailsResponse(link *model.Link) linkDetailsResponse {
	visits := make([]visitResponse, len(link.Visits))
	for i, v := range link.Visits {
		visits[i] = visitResponse{
			VisitorID: v.VisitorID,
			Timestamp: v.Timestamp.UTC(),
			Day:       v.Day(),
			Time:      v.Clock(),
		}
	}
	return linkDetailsResponse{
		linkResponse: h.toLinkResponse(link),
		Visits:       visits,
	}
}
