package handlers

import (
	"crypto/subtle"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// DownloadCSV serves the raw attendance log, gated by the shared download
// secret passed as ?pwd=. Compared in constant time to keep response timing
// from leaking how much of the password matched.
func (a *API) DownloadCSV(c *gin.Context) {
	pwd := c.Query("pwd")
	if pwd == "" {
		c.JSON(http.StatusBadRequest, NoPasswordResponse)
		return
	}
	if subtle.ConstantTimeCompare([]byte(pwd), []byte(a.Password)) != 1 {
		c.JSON(http.StatusUnauthorized, WrongPasswordResponse)
		return
	}
	if !a.Records.Exists() {
		c.JSON(http.StatusNotFound, NoRecordsResponse)
		return
	}
	c.FileAttachment(a.Records.Path, filepath.Base(a.Records.Path))
}
