package ports

import "github.com/shopspring/decimal"

// Notifier es el puerto de notificaciones salientes (webhooks de chat).
// Todas las llamadas son fire-and-forget: la implementación despacha en segundo
// plano, nunca bloquea al caso de uso que la invoca y se traga los fallos de red
// (solo los registra en el log).
type Notifier interface {
	NotifySale(sellerName string, total decimal.Decimal, paymentLabel string)
	NotifyLowStock(productName string, stock int)
	NotifyClockIn(userName string)
	NotifyClockOut(userName string, hours decimal.Decimal)
}
