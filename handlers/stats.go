package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type StatsResponse struct {
	TotalStudents int `json:"total_students"`
	PresentToday  int `json:"present_today"`
}

type ExtendedStatsResponse struct {
	TotalStudents int     `json:"total_students"`
	Present       int     `json:"present"`
	Absent        int     `json:"absent"`
	Percentage    float64 `json:"percentage"`
}

func (a *API) AttendanceStats(c *gin.Context) {
	c.JSON(http.StatusOK, StatsResponse{
		TotalStudents: a.Gallery.Count(),
		PresentToday:  a.Tracker.PresentCount(),
	})
}

func (a *API) ExtendedAttendance(c *gin.Context) {
	c.JSON(http.StatusOK, ExtendedStats(a.Gallery.Count(), a.Tracker.PresentCount()))
}

// ExtendedStats derives the absent count and present percentage. The
// percentage is 0 when nobody is enrolled.
func ExtendedStats(total, present int) ExtendedStatsResponse {
	result := ExtendedStatsResponse{
		TotalStudents: total,
		Present:       present,
		Absent:        total - present,
	}
	if total > 0 {
		result.Percentage = float64(present) / float64(total) * 100
	}
	return result
}
