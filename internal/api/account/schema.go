package account

type AccountParamsSchema struct {
	Address string `validate:"required,hexadecimal"`
}

type AccountShowSchema struct {
	Address    string `json:"address"`
	BalanceE8s string `json:"balance_e8s"`
	Balance    string `json:"balance"`
}
