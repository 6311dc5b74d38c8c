package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"user-form/internal/domain/user"
	dto "user-form/internal/interface/api/rest/dto/user"
	"user-form/internal/interface/api/rest/validator"
)

type ValidateController struct {
	logger *zap.Logger
}

func NewValidateController(r *gin.Engine, logger *zap.Logger) *ValidateController {
	vc := &ValidateController{logger: logger}

	r.POST(RouteValidate, vc.ValidateHandler)

	return vc
}

func (vc *ValidateController) ValidateHandler(c *gin.Context) {
	var req dto.ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		vc.logger.Debug("validate: bad request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	var errs user.ValidationErrors
	if req.Field == "" {
		errs = validator.ValidateUser(req.Request)
	} else {
		ok, f := validator.IsField(req.Field)
		if !ok {
			c.JSON(
				http.StatusBadRequest,
				gin.H{"error": "unknown field " + req.Field},
			)
			return
		}
		errs = validator.ValidateField(req.Request, f)
	}

	c.JSON(http.StatusOK, dto.ToValidateResponse(errs))
}
