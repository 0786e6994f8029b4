package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"prom_map/internal/models"
	"prom_map/internal/services"
)

// requestLog returns a Logrus entry tagged with the request id.
func requestLog(c *gin.Context) *logrus.Entry {
	return logrus.WithField("request_id", c.GetString("request_id"))
}

// parseID reads the :id path parameter.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return 0, false
	}
	return uint(id), true
}

// bindPayload decodes the request body as a JSON object. An empty body or a
// literal null is treated as an empty object.
func bindPayload(c *gin.Context) (models.Payload, bool) {
	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return nil, false
	}

	payload := models.Payload{}
	if len(bytes.TrimSpace(raw)) == 0 {
		return payload, true
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		requestLog(c).WithError(err).Warn("bindPayload: body is not a JSON object")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: body must be a JSON object"})
		return nil, false
	}
	if payload == nil {
		payload = models.Payload{}
	}
	return payload, true
}

// respondError maps store and projection errors onto HTTP statuses.
func respondError(c *gin.Context, notFound string, err error) {
	var fieldErr *models.FieldError
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound})
	case errors.As(err, &fieldErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": fieldErr.Error()})
	default:
		requestLog(c).WithError(err).Error("storage failure")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
