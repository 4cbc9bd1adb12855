package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gallinero/henhouse-api/internal/application/ports"
	"github.com/gallinero/henhouse-api/internal/domain/entity"
	"github.com/gallinero/henhouse-api/internal/domain/repository"
	"github.com/gallinero/henhouse-api/pkg/logger"
)

// Colores de los embeds por tipo de evento.
const (
	colorSale     = 0xff6a2b
	colorClockIn  = 0x00ff00
	colorClockOut = 0xff0000
	colorLowStock = 0xffa500
)

var _ ports.Notifier = (*Dispatcher)(nil)

// Dispatcher envía embeds estilo Discord a los webhooks activos de cada
// categoría. Cada notificación se despacha en su propia goroutine; los fallos
// de red se registran y se descartan, nunca interrumpen la operación que los
// originó.
type Dispatcher struct {
	webhooks repository.WebhookRepository
	client   *http.Client
	log      *logger.Logger
}

// NewDispatcher construye el despachador con el timeout de salida configurado.
func NewDispatcher(webhooks repository.WebhookRepository, timeout time.Duration, log *logger.Logger) *Dispatcher {
	return &Dispatcher{
		webhooks: webhooks,
		client:   &http.Client{Timeout: timeout},
		log:      log,
	}
}

type embedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

type embed struct {
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color"`
	Fields      []embedField `json:"fields,omitempty"`
	Timestamp   string       `json:"timestamp"`
}

type webhookPayload struct {
	Embeds []embed `json:"embeds"`
}

// NotifySale anuncia una venta completada.
func (d *Dispatcher) NotifySale(sellerName string, total decimal.Decimal, paymentLabel string) {
	d.dispatch(entity.CategorySales, embed{
		Title: "💰 Nueva Venta",
		Color: colorSale,
		Fields: []embedField{
			{Name: "Vendedor", Value: sellerName, Inline: true},
			{Name: "Total", Value: "$" + total.StringFixed(2), Inline: true},
			{Name: "Método de Pago", Value: paymentLabel, Inline: true},
		},
	})
}

// NotifyLowStock alerta que un producto quedó en o bajo el umbral.
func (d *Dispatcher) NotifyLowStock(productName string, stock int) {
	d.dispatch(entity.CategoryStock, embed{
		Title:       "⚠️ Stock Bajo",
		Description: fmt.Sprintf("El producto **%s** tiene solo **%d** unidades restantes.", productName, stock),
		Color:       colorLowStock,
	})
}

// NotifyClockIn anuncia el inicio de un turno.
func (d *Dispatcher) NotifyClockIn(userName string) {
	d.dispatch(entity.CategoryShifts, embed{
		Title:       "🟢 Entrada Registrada",
		Description: fmt.Sprintf("**%s** ha iniciado su turno.", userName),
		Color:       colorClockIn,
	})
}

// NotifyClockOut anuncia el cierre de un turno con las horas trabajadas.
func (d *Dispatcher) NotifyClockOut(userName string, hours decimal.Decimal) {
	d.dispatch(entity.CategoryShifts, embed{
		Title:       "🔴 Salida Registrada",
		Description: fmt.Sprintf("**%s** ha terminado su turno.", userName),
		Color:       colorClockOut,
		Fields: []embedField{
			{Name: "Horas Trabajadas", Value: hours.StringFixed(2) + " h", Inline: true},
		},
	})
}

// dispatch resuelve los destinos activos de la categoría y envía en segundo plano.
func (d *Dispatcher) dispatch(category string, e embed) {
	e.Timestamp = time.Now().UTC().Format(time.RFC3339)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				d.log.Error().Interface("panic", r).Msg("pánico despachando notificación")
			}
		}()

		targets, err := d.webhooks.ListActiveByCategory(category)
		if err != nil {
			d.log.Error().Err(err).Str("categoria", category).Msg("no se pudieron resolver webhooks")
			return
		}
		if len(targets) == 0 {
			return
		}

		body, err := json.Marshal(webhookPayload{Embeds: []embed{e}})
		if err != nil {
			d.log.Error().Err(err).Msg("no se pudo serializar el payload del webhook")
			return
		}

		for _, t := range targets {
			if err := d.post(t.URL, body); err != nil {
				d.log.Warn().Err(err).Str("url", t.URL).Str("categoria", category).
					Msg("fallo al enviar webhook")
			}
		}
	}()
}

func (d *Dispatcher) post(url string, body []byte) error {
	resp, err := d.client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("estado inesperado %d", resp.StatusCode)
	}
	return nil
}
