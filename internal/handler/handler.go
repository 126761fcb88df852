package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/goodgifts/goodgifts-backend/internal/common"
	"github.com/goodgifts/goodgifts-backend/internal/middleware"
)

// parseListParams reads the limit and offset query params. limit must be
// at least 1 and offset at least 0; anything else is a client error.
func parseListParams(c *gin.Context) (limit, offset int, ok bool) {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit < 1 {
		common.Fail(c, http.StatusBadRequest, "Invalid limit")
		return 0, 0, false
	}
	offset, err = strconv.Atoi(c.Query("offset"))
	if err != nil || offset < 0 {
		common.Fail(c, http.StatusBadRequest, "Invalid offset")
		return 0, 0, false
	}
	return limit, offset, true
}

// requireUUIDs rejects the request when any of the given values is not a
// well-formed uuid. Saves a round trip to the database for garbage ids.
func requireUUIDs(c *gin.Context, ids ...string) bool {
	for _, id := range ids {
		if _, err := uuid.Parse(id); err != nil {
			common.FromError(c, common.ErrInvalidIDFormat)
			return false
		}
	}
	return true
}

// guardIdentity enforces that the userId a request declares is the one
// the credential was issued for.
func guardIdentity(c *gin.Context, declaredUserID string) bool {
	if declaredUserID != middleware.GetUserID(c) {
		common.Fail(c, http.StatusUnauthorized, "Unauthorized")
		return false
	}
	return true
}
