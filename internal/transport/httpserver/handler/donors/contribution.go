package donors

import (
	"charity-app-go/internal/domain/donation"
)

type moneyBody struct {
	Source string  `json:"source"`
	Amount float64 `json:"amount"`
}

type itemBody struct {
	Name   string `json:"name"`
	Amount int    `json:"amount"`
}

type contributionBody struct {
	IsMoney     bool       `json:"isMoney"`
	Money       *moneyBody `json:"money"`
	IsClothes   bool       `json:"isClothes"`
	Clothes     *itemBody  `json:"clothes"`
	IsFurniture bool       `json:"isFurniture"`
	Furniture   *itemBody  `json:"furniture"`
}

func (b *contributionBody) toFields() *donation.ContributionFields {
	if b == nil {
		return nil
	}
	fields := &donation.ContributionFields{
		IsMoney:     b.IsMoney,
		IsClothes:   b.IsClothes,
		IsFurniture: b.IsFurniture,
	}
	if b.Money != nil {
		fields.Money = &donation.MoneyFields{Source: b.Money.Source, Amount: b.Money.Amount}
	}
	if b.Clothes != nil {
		fields.Clothes = &donation.ItemFields{Name: b.Clothes.Name, Amount: b.Clothes.Amount}
	}
	if b.Furniture != nil {
		fields.Furniture = &donation.ItemFields{Name: b.Furniture.Name, Amount: b.Furniture.Amount}
	}
	return fields
}
