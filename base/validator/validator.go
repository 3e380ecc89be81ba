package validator

import (
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/x-xyz/dasgo/domain/das"
	"golang.org/x/xerrors"
)

const (
	// TagDasAccount validates a syntactically supported .bit account
	TagDasAccount = "dasaccount"
	// TagCoinType validates a numeric SLIP-44 coin type
	TagCoinType = "cointype"
)

// IsValidAddress returns is an address valid or not
func IsValidAddress(address string) bool {
	checksum := common.HexToAddress(address).Hex()
	return strings.ToLower(checksum) == strings.ToLower(address)
}

// IsValidCoinType accepts the decimal form the indexer expects
func IsValidCoinType(coinType string) bool {
	_, err := strconv.ParseUint(coinType, 10, 32)
	return err == nil
}

var customTags = map[string]validator.Func{
	TagDasAccount: func(fl validator.FieldLevel) bool {
		return das.IsSupportedAccount(fl.Field().String())
	},
	TagCoinType: func(fl validator.FieldLevel) bool {
		return IsValidCoinType(fl.Field().String())
	},
}

// New returns a validator knowing the account and coin type tags
func New() (*validator.Validate, error) {
	v := validator.New()
	if err := registerTags(v, customTags); err != nil {
		return nil, err
	}
	return v, nil
}

func registerTags(v *validator.Validate, tags map[string]validator.Func) error {
	for tag, fn := range tags {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return xerrors.Errorf("failed to register %q: %w", tag, err)
		}
	}
	return nil
}

func NewCustomValidator(v *validator.Validate) echo.Validator {
	return &CustomValidator{v}
}

type CustomValidator struct {
	validator *validator.Validate
}

func (v *CustomValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return err
	}
	return nil
}
