package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"cookitsimple/entities"
	"cookitsimple/pkg/export"
	"cookitsimple/pkg/importer/repository"
	"cookitsimple/pkg/importer/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ImportCtrl struct {
	svc      service.ImportService
	ledger   repository.LedgerRepository
	settings repository.SettingsRepository
}

func New(svc service.ImportService, ledger repository.LedgerRepository, settings repository.SettingsRepository) *ImportCtrl {
	return &ImportCtrl{svc: svc, ledger: ledger, settings: settings}
}

func (h *ImportCtrl) Register(e *echo.Echo) {
	e.POST("/api/import", h.Trigger)

	g := e.Group("/api/admin/import")
	g.GET("/settings", h.GetSettings)
	g.PUT("/settings", h.UpdateSettings)
	g.GET("/history", h.History)
	g.GET("/history/export", h.ExportHistory)
}

// Trigger runs one import attempt. Business outcomes, skips included,
// answer 200; only hard failures answer 500.
func (h *ImportCtrl) Trigger(c echo.Context) error {
	var body struct {
		Force bool `json:"force"`
	}
	// Absent or malformed body simply means force=false.
	_ = c.Bind(&body)

	out := h.svc.Run(c.Request().Context(), body.Force)
	switch out.Status {
	case service.StatusImported:
		return c.JSON(http.StatusOK, echo.Map{
			"success": true,
			"message": out.Message,
			"recipe": echo.Map{
				"id":    out.Recipe.ID,
				"title": out.Recipe.Title,
				"slug":  out.Recipe.Slug,
			},
		})
	case service.StatusSkipped:
		resp := echo.Map{"success": false, "message": out.Message}
		if out.NextImportAt != nil {
			resp["next_import_at"] = out.NextImportAt
		}
		if out.LocalRecipeID != nil {
			resp["local_recipe_id"] = out.LocalRecipeID
		}
		return c.JSON(http.StatusOK, resp)
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": out.Message})
	}
}

func (h *ImportCtrl) GetSettings(c echo.Context) error {
	cfg, err := h.settings.Get()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	if cfg == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "no import settings configured"})
	}
	return c.JSON(http.StatusOK, cfg)
}

// UpdateSettings applies manual edits to the gate fields. It deliberately
// leaves next_import_at alone; only a completed import moves the schedule.
func (h *ImportCtrl) UpdateSettings(c echo.Context) error {
	cfg, err := h.settings.Get()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	if cfg == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "no import settings configured"})
	}

	var body struct {
		Enabled    *bool   `json:"enabled"`
		Frequency  *string `json:"frequency"`
		ImportHour *int    `json:"import_hour"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	if body.Enabled != nil {
		cfg.Enabled = *body.Enabled
	}
	if body.Frequency != nil {
		switch *body.Frequency {
		case entities.FrequencyDaily, entities.FrequencyEvery2Days, entities.FrequencyWeekly:
			cfg.Frequency = *body.Frequency
		default:
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown frequency"})
		}
	}
	if body.ImportHour != nil {
		if *body.ImportHour < 0 || *body.ImportHour > 23 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "import_hour must be 0-23"})
		}
		cfg.ImportHour = *body.ImportHour
	}

	if err := h.settings.Save(cfg); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, cfg)
}

func (h *ImportCtrl) History(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	out, err := h.ledger.List(limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ImportCtrl) ExportHistory(c echo.Context) error {
	entries, err := h.ledger.List(0)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	f, err := export.HistoryWorkbook(entries)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="import-history.xlsx"`)
	c.Response().Header().Set(echo.HeaderContentType, xlsxContentType)
	c.Response().WriteHeader(http.StatusOK)
	_, err = f.WriteTo(c.Response())
	return err
}
