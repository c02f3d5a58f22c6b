package handlers

import (
	"net/http"

	"github.com/username/pibconectar/src/charts"
	"github.com/username/pibconectar/src/logger"
	"github.com/username/pibconectar/src/models"
	"github.com/username/pibconectar/src/processors"
	"github.com/username/pibconectar/src/services"
	"github.com/username/pibconectar/src/utils"
)

const upstreamUnavailableMsg = "PIB data is temporarily unavailable"

type PIBHandler struct {
	pibProcessor *processors.PIBProcessor
	converter    processors.Converter
	rateService  services.ExchangeRateService
}

func NewPIBHandler(pibProcessor *processors.PIBProcessor, converter processors.Converter, rateService services.ExchangeRateService) *PIBHandler {
	return &PIBHandler{
		pibProcessor: pibProcessor,
		converter:    converter,
		rateService:  rateService,
	}
}

// HandleGetPIBData serves the merged, year-ordered records.
func (h *PIBHandler) HandleGetPIBData(w http.ResponseWriter, r *http.Request) {
	ctxLogger := logger.FromContext(r.Context())
	ctxLogger.Info("Handling GetPIBData")

	h.pibProcessor.Load(r.Context(), func(records []models.PIBRecord, err error) {
		if err != nil {
			ctxLogger.Error("Error assembling PIB records", "error", err)
			sendUpstreamError(w, r, upstreamUnavailableMsg)
			return
		}
		utils.SendJSON(w, records)
	})
}

// HandleGetPIBChart serves the chart payload built from the merged records.
func (h *PIBHandler) HandleGetPIBChart(w http.ResponseWriter, r *http.Request) {
	ctxLogger := logger.FromContext(r.Context())

	h.pibProcessor.Load(r.Context(), func(records []models.PIBRecord, err error) {
		if err != nil {
			ctxLogger.Error("Error loading PIB data for chart", "error", err)
			sendUpstreamError(w, r, upstreamUnavailableMsg)
			return
		}
		utils.SendJSON(w, charts.BuildPIBChart(records))
	})
}

func (h *PIBHandler) HandleGetGDPInUSD(w http.ResponseWriter, r *http.Request) {
	series, err := h.converter.GDPInUSD(r.Context())
	if err != nil {
		sendUpstreamError(w, r, upstreamUnavailableMsg)
		return
	}
	utils.SendJSON(w, models.ToYearValues(series))
}

func (h *PIBHandler) HandleGetGDPPerCapitaInUSD(w http.ResponseWriter, r *http.Request) {
	series, err := h.converter.GDPPerCapitaInUSD(r.Context())
	if err != nil {
		sendUpstreamError(w, r, upstreamUnavailableMsg)
		return
	}
	utils.SendJSON(w, models.ToYearValues(series))
}

func (h *PIBHandler) HandleGetExchangeRates(w http.ResponseWriter, r *http.Request) {
	rates, err := h.rateService.FetchExchangeRates(r.Context())
	if err != nil {
		sendUpstreamError(w, r, "exchange rates are temporarily unavailable")
		return
	}
	utils.SendJSON(w, models.ToYearValues(rates))
}

// sendUpstreamError answers 502 and echoes the request ID so the failure can be
// matched with the server logs.
func sendUpstreamError(w http.ResponseWriter, r *http.Request, message string) {
	body := map[string]string{"error": message}
	if requestID, ok := requestIDFromContext(r.Context()); ok {
		body["requestID"] = requestID
	}
	utils.SendJSONStatus(w, http.StatusBadGateway, body)
}
