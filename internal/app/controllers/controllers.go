// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/motorlab/apexhub/internal/app/models/dto"
)

// parseIDParam reads a numeric path parameter. On failure it writes the 400
// response itself and reports false.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id < 1 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid "+name+" parameter"))
		return 0, false
	}
	return id, true
}

// bindJSON binds the request body. On failure it writes the 400 response
// itself and reports false.
func bindJSON(ctx *gin.Context, obj interface{}) bool {
	if err := ctx.ShouldBindJSON(obj); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request payload: "+err.Error()))
		return false
	}
	return true
}
