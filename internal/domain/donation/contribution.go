package donation

import (
	"fmt"
	"math"

	"charity-app-go/internal/domain/common"
)

type Money struct {
	Source common.MoneySource `json:"source"`
	Amount float64            `json:"amount"`
}

type Clothes struct {
	Name   common.ClothingType `json:"name"`
	Amount int                 `json:"amount"`
}

type Furniture struct {
	Name   common.FurnitureType `json:"name"`
	Amount int                  `json:"amount"`
}

// Contribution describes what was donated or handed out. Parts whose flag is
// false are always nil.
type Contribution struct {
	IsMoney     bool       `json:"isMoney"`
	Money       *Money     `json:"money,omitempty"`
	IsClothes   bool       `json:"isClothes"`
	Clothes     *Clothes   `json:"clothes,omitempty"`
	IsFurniture bool       `json:"isFurniture"`
	Furniture   *Furniture `json:"furniture,omitempty"`
}

type MoneyFields struct {
	Source string
	Amount float64
}

type ItemFields struct {
	Name   string
	Amount int
}

type ContributionFields struct {
	IsMoney     bool
	Money       *MoneyFields
	IsClothes   bool
	Clothes     *ItemFields
	IsFurniture bool
	Furniture   *ItemFields
}

func ParseContribution(field string, fields ContributionFields) (Contribution, error) {
	if !fields.IsMoney && !fields.IsClothes && !fields.IsFurniture {
		return Contribution{}, fmt.Errorf("%w: %s must include money, clothes or furniture", common.ErrInvalidInput, field)
	}

	var c Contribution
	if fields.IsMoney {
		if fields.Money == nil || cents(fields.Money.Amount) <= 0 {
			return Contribution{}, fmt.Errorf("%w: %s.money.amount must be positive", common.ErrInvalidInput, field)
		}
		source, err := common.ParseMoneySource(fields.Money.Source)
		if err != nil {
			return Contribution{}, err
		}
		c.IsMoney = true
		c.Money = &Money{Source: source, Amount: fromCents(cents(fields.Money.Amount))}
	}
	if fields.IsClothes {
		if fields.Clothes == nil || fields.Clothes.Amount <= 0 {
			return Contribution{}, fmt.Errorf("%w: %s.clothes.amount must be positive", common.ErrInvalidInput, field)
		}
		name, err := common.ParseClothingType(fields.Clothes.Name)
		if err != nil {
			return Contribution{}, err
		}
		c.IsClothes = true
		c.Clothes = &Clothes{Name: name, Amount: fields.Clothes.Amount}
	}
	if fields.IsFurniture {
		if fields.Furniture == nil || fields.Furniture.Amount <= 0 {
			return Contribution{}, fmt.Errorf("%w: %s.furniture.amount must be positive", common.ErrInvalidInput, field)
		}
		name, err := common.ParseFurnitureType(fields.Furniture.Name)
		if err != nil {
			return Contribution{}, err
		}
		c.IsFurniture = true
		c.Furniture = &Furniture{Name: name, Amount: fields.Furniture.Amount}
	}
	return c, nil
}

func (c Contribution) Equal(other Contribution) bool {
	if c.IsMoney != other.IsMoney || c.IsClothes != other.IsClothes || c.IsFurniture != other.IsFurniture {
		return false
	}
	if c.IsMoney && (c.Money.Source != other.Money.Source || cents(c.Money.Amount) != cents(other.Money.Amount)) {
		return false
	}
	if c.IsClothes && *c.Clothes != *other.Clothes {
		return false
	}
	if c.IsFurniture && *c.Furniture != *other.Furniture {
		return false
	}
	return true
}

// Remaining subtracts every handed-out contribution from the donated one.
// Parts that were never donated stay absent.
func (c Contribution) Remaining(given ...Contribution) Contribution {
	left := Contribution{IsMoney: c.IsMoney, IsClothes: c.IsClothes, IsFurniture: c.IsFurniture}
	if c.IsMoney {
		money := *c.Money
		left.Money = &money
	}
	if c.IsClothes {
		clothes := *c.Clothes
		left.Clothes = &clothes
	}
	if c.IsFurniture {
		furniture := *c.Furniture
		left.Furniture = &furniture
	}

	for _, g := range given {
		if g.IsMoney && left.IsMoney {
			left.Money.Amount = fromCents(cents(left.Money.Amount) - cents(g.Money.Amount))
		}
		if g.IsClothes && left.IsClothes && g.Clothes.Name == left.Clothes.Name {
			left.Clothes.Amount -= g.Clothes.Amount
		}
		if g.IsFurniture && left.IsFurniture && g.Furniture.Name == left.Furniture.Name {
			left.Furniture.Amount -= g.Furniture.Amount
		}
	}
	return left
}

// Covers reports whether c still holds enough of every part flagged in want.
func (c Contribution) Covers(want Contribution) bool {
	if want.IsMoney && (!c.IsMoney || cents(c.Money.Amount) < cents(want.Money.Amount)) {
		return false
	}
	if want.IsClothes && (!c.IsClothes || c.Clothes.Name != want.Clothes.Name || c.Clothes.Amount < want.Clothes.Amount) {
		return false
	}
	if want.IsFurniture && (!c.IsFurniture || c.Furniture.Name != want.Furniture.Name || c.Furniture.Amount < want.Furniture.Amount) {
		return false
	}
	return true
}

// Money is compared and subtracted in whole cents.
func cents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func fromCents(c int64) float64 {
	return float64(c) / 100
}
