package orderpublisher

import "send-test-order/internal/domain"

// SingleOrder returns the order sent in single mode.
func SingleOrder() domain.Order {
	return domain.Order{
		CodigoPedido:  1001,
		CodigoCliente: 1,
		Itens: []domain.OrderItem{
			{Produto: "lápis", Quantidade: 100, Preco: domain.NewAmount("1.10")},
			{Produto: "caderno", Quantidade: 10, Preco: domain.NewAmount("1.00")},
		},
	}
}

// BatchOrders returns the orders sent in batch mode, in publish order.
func BatchOrders() []domain.Order {
	return []domain.Order{
		{
			CodigoPedido:  1002,
			CodigoCliente: 2,
			Itens: []domain.OrderItem{
				{Produto: "notebook", Quantidade: 1, Preco: domain.NewAmount("2500.00")},
				{Produto: "mouse", Quantidade: 1, Preco: domain.NewAmount("50.00")},
			},
		},
		{
			CodigoPedido:  1003,
			CodigoCliente: 1,
			Itens: []domain.OrderItem{
				{Produto: "teclado", Quantidade: 1, Preco: domain.NewAmount("150.00")},
			},
		},
		{
			CodigoPedido:  1004,
			CodigoCliente: 3,
			Itens: []domain.OrderItem{
				{Produto: "monitor", Quantidade: 2, Preco: domain.NewAmount("800.00")},
				{Produto: "cabo HDMI", Quantidade: 2, Preco: domain.NewAmount("25.00")},
			},
		},
	}
}
