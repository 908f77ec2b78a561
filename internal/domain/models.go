package domain

import (
	"github.com/shopspring/decimal"
)

//=================================================
// RabbitMQ Message Models
//=================================================

// Order is the message consumed from order.queue by the order-processing service.
type Order struct {
	CodigoPedido  int64       `json:"codigoPedido"`
	CodigoCliente int64       `json:"codigoCliente"`
	Itens         []OrderItem `json:"itens"`
}

// OrderItem is a single line of an Order.
type OrderItem struct {
	Produto    string `json:"produto"`
	Quantidade int    `json:"quantidade"`
	Preco      Amount `json:"preco"`
}

// Total returns the sum of quantity times unit price over all items.
// It is for display only and is never part of the message.
func (o Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Itens {
		total = total.Add(item.Subtotal())
	}
	return total
}

// Subtotal returns quantity times unit price.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Preco.Mul(decimal.NewFromInt(int64(i.Quantidade)))
}
