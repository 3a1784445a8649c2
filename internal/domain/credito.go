package domain

import (
	"strings"

	"github.com/DjordjeVuckovic/creditos/internal/apperr"
	"github.com/DjordjeVuckovic/creditos/pkg/utils"
)

// Prefixes identifying generated test records
const (
	TestCreditoPrefix = "TESTE"
	TestNfsePrefix    = "TESTE_NFSE"
)

// Credito is an ISSQN tax credit constituted from an NFS-e (service invoice)
type Credito struct {
	ID               int64   `json:"id"`
	NumeroCredito    string  `json:"numeroCredito"`
	NumeroNfse       string  `json:"numeroNfse"`
	DataConstituicao Date    `json:"dataConstituicao"`
	ValorIssqn       float64 `json:"valorIssqn"`
	TipoCredito      string  `json:"tipoCredito"`
	SimplesNacional  bool    `json:"simplesNacional"`
	Aliquota         float64 `json:"aliquota"`
	ValorFaturado    float64 `json:"valorFaturado"`
	ValorDeducao     float64 `json:"valorDeducao"`
	BaseCalculo      float64 `json:"baseCalculo"`
}

// NewCredito builds a credito computing its calculation base and ISSQN value
func NewCredito(
	numeroCredito, numeroNfse string,
	dataConstituicao Date,
	tipoCredito string,
	simplesNacional bool,
	aliquota, valorFaturado, valorDeducao float64,
) (Credito, error) {
	c := Credito{
		NumeroCredito:    numeroCredito,
		NumeroNfse:       numeroNfse,
		DataConstituicao: dataConstituicao,
		TipoCredito:      tipoCredito,
		SimplesNacional:  simplesNacional,
		Aliquota:         aliquota,
		ValorFaturado:    valorFaturado,
		ValorDeducao:     valorDeducao,
	}
	if err := c.Recalculate(); err != nil {
		return Credito{}, err
	}
	return c, nil
}

// Recalculate refreshes BaseCalculo and ValorIssqn from the invoiced amounts and rate
func (c *Credito) Recalculate() error {
	base, err := CalcBaseCalculo(c.ValorFaturado, c.ValorDeducao)
	if err != nil {
		return err
	}
	iss, err := CalcValorIssqn(base, c.Aliquota)
	if err != nil {
		return err
	}

	c.BaseCalculo = base
	c.ValorIssqn = iss
	return nil
}

func (c Credito) IsTestRecord() bool {
	return strings.HasPrefix(c.NumeroCredito, TestCreditoPrefix) || strings.HasPrefix(c.NumeroNfse, TestNfsePrefix)
}

// CalcBaseCalculo returns valorFaturado - valorDeducao rounded to cents
func CalcBaseCalculo(valorFaturado, valorDeducao float64) (float64, error) {
	if valorFaturado < 0 {
		return 0, apperr.NewFieldValidation("valorFaturado", "field 'valorFaturado' must not be negative")
	}
	if valorDeducao < 0 {
		return 0, apperr.NewFieldValidation("valorDeducao", "field 'valorDeducao' must not be negative")
	}
	if valorDeducao > valorFaturado {
		return 0, apperr.NewFieldValidation("valorDeducao", "field 'valorDeducao' must not exceed 'valorFaturado'")
	}

	return utils.RoundDecimal(valorFaturado-valorDeducao, 2), nil
}

// CalcValorIssqn returns baseCalculo * aliquota / 100 rounded to cents. The rate is a percentage.
func CalcValorIssqn(baseCalculo, aliquota float64) (float64, error) {
	if baseCalculo < 0 {
		return 0, apperr.NewFieldValidation("baseCalculo", "field 'baseCalculo' must not be negative")
	}
	if aliquota < 0 {
		return 0, apperr.NewFieldValidation("aliquota", "field 'aliquota' must not be negative")
	}

	return utils.RoundDecimal(baseCalculo*aliquota/100, 2), nil
}
