package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/Joaomarcellodev/IzziOrder/internal/menu"
	"github.com/Joaomarcellodev/IzziOrder/internal/notification/ws"
	ordercontroller "github.com/Joaomarcellodev/IzziOrder/internal/order/controller"
	"github.com/Joaomarcellodev/IzziOrder/internal/report"
	tablecontroller "github.com/Joaomarcellodev/IzziOrder/internal/table/controller"
)

func NewRouter(
	menuCtrl *menu.Controller,
	orderCtrl *ordercontroller.OrderController,
	tableCtrl *tablecontroller.TableController,
	reportCtrl *report.Controller,
	hub *ws.Hub,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/menu/items", func(r chi.Router) {
		r.Get("/", menuCtrl.HandleList)
		r.Post("/", menuCtrl.HandleCreate)
		r.Put("/{itemId}", menuCtrl.HandleUpdate)
		r.Patch("/{itemId}/availability", menuCtrl.HandleToggleAvailability)
	})

	r.Route("/orders", func(r chi.Router) {
		r.Get("/board", orderCtrl.HandleBoard)
		r.Post("/", orderCtrl.HandleCreate)
		r.Post("/{orderId}/confirm", orderCtrl.HandleConfirm)
		r.Post("/{orderId}/preparing", orderCtrl.HandlePreparing)
		r.Post("/{orderId}/ready", orderCtrl.HandleReady)
	})

	r.Route("/tables", func(r chi.Router) {
		r.Get("/", tableCtrl.HandleList)
		r.Get("/{tableId}", tableCtrl.HandleGet)
		r.Post("/{tableId}/tab", tableCtrl.HandleOpenTab)
		r.Post("/{tableId}/lines", tableCtrl.HandleAddLine)
		r.Patch("/{tableId}/lines/{lineId}", tableCtrl.HandleAdjustLine)
		r.Delete("/{tableId}/lines/{lineId}", tableCtrl.HandleRemoveLine)
		r.Post("/{tableId}/kitchen", tableCtrl.HandleSendToKitchen)
		r.Post("/{tableId}/bill", tableCtrl.HandleRequestBill)
		r.Post("/{tableId}/bill/print", tableCtrl.HandlePrintBill)
		r.Post("/{tableId}/bill/split", tableCtrl.HandleSplitBill)
		r.Post("/{tableId}/payment", tableCtrl.HandleCloseAndPay)
	})

	r.Get("/reports/summary", reportCtrl.HandleSummary)

	r.Get("/ws/events", func(w http.ResponseWriter, r *http.Request) {
		ws.ServeWS(hub, logger, w, r)
	})

	return r
}
