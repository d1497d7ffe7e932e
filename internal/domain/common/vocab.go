package common

import (
	"fmt"
	"strings"
)

type FamilyCategory string

const (
	FamilyCategoryOrphans FamilyCategory = "orphans"
	FamilyCategoryPoor    FamilyCategory = "poor"
	FamilyCategoryOther   FamilyCategory = "other"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type MaritalStatus string

const (
	MaritalSingle   MaritalStatus = "single"
	MaritalMarried  MaritalStatus = "married"
	MaritalDivorced MaritalStatus = "divorced"
	MaritalWidowed  MaritalStatus = "widowed"
)

type DonorCategory string

const (
	DonorCommitted  DonorCategory = "committed"
	DonorOneTime    DonorCategory = "one_time"
	DonorRepetitive DonorCategory = "repetitive"
)

type MoneySource string

const (
	MoneyBank    MoneySource = "bank"
	MoneyCash    MoneySource = "cash"
	MoneyInPlace MoneySource = "in_place"
)

type ClothingType string

const (
	ClothingTShirt  ClothingType = "t_shirt"
	ClothingJeans   ClothingType = "jeans"
	ClothingDress   ClothingType = "dress"
	ClothingBlouse  ClothingType = "blouse"
	ClothingSweater ClothingType = "sweater"
	ClothingShorts  ClothingType = "shorts"
	ClothingSkirt   ClothingType = "skirt"
	ClothingJacket  ClothingType = "jacket"
	ClothingCoat    ClothingType = "coat"
	ClothingHoodie  ClothingType = "hoodie"
)

type FurnitureType string

const (
	FurnitureChair        FurnitureType = "chair"
	FurnitureTable        FurnitureType = "table"
	FurnitureBed          FurnitureType = "bed"
	FurnitureSofa         FurnitureType = "sofa"
	FurnitureTV           FurnitureType = "tv"
	FurnitureRefrigerator FurnitureType = "refrigerator"
)

// Priority ranks families and member needs; 1 is the most urgent.
type Priority int

const (
	PriorityHighest Priority = 1
	PriorityLowest  Priority = 5
	DefaultPriority          = PriorityLowest
)

func (p Priority) Valid() bool {
	return p >= PriorityHighest && p <= PriorityLowest
}

func ParseFamilyCategory(value string) (FamilyCategory, error) {
	return parseEnum("familyCategory", value, FamilyCategoryOrphans, FamilyCategoryPoor, FamilyCategoryOther)
}

func ParseGender(value string) (Gender, error) {
	return parseEnum("gender", value, GenderMale, GenderFemale)
}

func ParseMaritalStatus(value string) (MaritalStatus, error) {
	return parseEnum("maritalStatus", value, MaritalSingle, MaritalMarried, MaritalDivorced, MaritalWidowed)
}

func ParseDonorCategory(value string) (DonorCategory, error) {
	return parseEnum("donorCategory", value, DonorCommitted, DonorOneTime, DonorRepetitive)
}

func ParseMoneySource(value string) (MoneySource, error) {
	return parseEnum("money.source", value, MoneyBank, MoneyCash, MoneyInPlace)
}

func ParseClothingType(value string) (ClothingType, error) {
	return parseEnum("clothes.name", value,
		ClothingTShirt, ClothingJeans, ClothingDress, ClothingBlouse, ClothingSweater,
		ClothingShorts, ClothingSkirt, ClothingJacket, ClothingCoat, ClothingHoodie)
}

func ParseFurnitureType(value string) (FurnitureType, error) {
	return parseEnum("furniture.name", value,
		FurnitureChair, FurnitureTable, FurnitureBed, FurnitureSofa, FurnitureTV, FurnitureRefrigerator)
}

func ParsePriority(field string, value int) (Priority, error) {
	p := Priority(value)
	if !p.Valid() {
		return 0, fmt.Errorf("%w: %s must be between %d and %d", ErrInvalidInput, field, PriorityHighest, PriorityLowest)
	}
	return p, nil
}

// parseEnum matches case-insensitively and accepts "-" or " " for "_",
// so "One-Time", "T-Shirt" and "in place" resolve to their canonical values.
func parseEnum[T ~string](field, value string, allowed ...T) (T, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	normalized = strings.NewReplacer("-", "_", " ", "_").Replace(normalized)
	for _, candidate := range allowed {
		if string(candidate) == normalized {
			return candidate, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: unknown %s %q", ErrInvalidInput, field, value)
}
