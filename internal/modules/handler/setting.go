package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/proxis-hn/proxis/internal/modules/serializer"
	"github.com/proxis-hn/proxis/internal/modules/service"
	"github.com/shopspring/decimal"
)

type SettingHandler struct {
	svc service.SettingService
}

func NewSettingHandler(s service.SettingService) *SettingHandler {
	return &SettingHandler{svc: s}
}

func (h *SettingHandler) Get(c *gin.Context) {
	s, err := h.svc.Get(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

type UpdateSettingReq struct {
	Currency          *string          `json:"currency" binding:"omitempty,currencycode"`
	ExchangeRate      *decimal.Decimal `json:"exchangeRate"`
	Locale            *string          `json:"locale"`
	AutoBackupEnabled *bool            `json:"autoBackupEnabled"`
	BackupFrequency   *string          `json:"backupFrequency"`
	LastBackupAt      *time.Time       `json:"lastBackupAt"`
}

func (h *SettingHandler) Update(c *gin.Context) {
	req := UpdateSettingReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	s, err := h.svc.Update(c.Request.Context(), service.UpdateSettingInput{
		Currency:          req.Currency,
		ExchangeRate:      req.ExchangeRate,
		Locale:            req.Locale,
		AutoBackupEnabled: req.AutoBackupEnabled,
		BackupFrequency:   req.BackupFrequency,
		LastBackupAt:      req.LastBackupAt,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}
