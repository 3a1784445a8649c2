package credito

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/DjordjeVuckovic/creditos/internal/domain"
	"github.com/DjordjeVuckovic/creditos/pkg/utils"
)

const (
	DefaultNfseCount      = 10
	DefaultCreditsPerNfse = 30
	MaxGenerateCount      = 100
)

var DefaultTiposCredito = []string{"ISS", "IPI", "ICMS", "PIS", "COFINS", "IR", "CSLL"}

type GenerateOptions struct {
	NfseCount      int `json:"nfseCount" validate:"min=1,max=100"`
	CreditsPerNfse int `json:"creditsPerNfse" validate:"min=1,max=100"`
}

func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{
		NfseCount:      DefaultNfseCount,
		CreditsPerNfse: DefaultCreditsPerNfse,
	}
}

// Generator produces random but internally consistent test creditos.
// Numbers are TESTE%06d, grouped under NFS-e TESTE_NFSE%03d.
type Generator struct {
	mu   sync.Mutex
	rnd  *rand.Rand
	now  func() time.Time
	days int
}

type GeneratorOption func(*Generator)

// WithSeed makes generation reproducible
func WithSeed(seed uint64) GeneratorOption {
	return func(g *Generator) { g.rnd = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) }
}

func WithClock(now func() time.Time) GeneratorOption {
	return func(g *Generator) { g.now = now }
}

func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{
		rnd:  rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		now:  time.Now,
		days: 365,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Generator) Generate(opts GenerateOptions) ([]domain.Credito, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	today := domain.DateOf(g.now())
	creditos := make([]domain.Credito, 0, opts.NfseCount*opts.CreditsPerNfse)

	for n := 1; n <= opts.NfseCount; n++ {
		numeroNfse := fmt.Sprintf("%s%03d", domain.TestNfsePrefix, n)

		for i := 1; i <= opts.CreditsPerNfse; i++ {
			seq := (n-1)*opts.CreditsPerNfse + i
			faturado := utils.RoundDecimal(g.between(1000, 50000), 2)
			deducao := utils.RoundDecimal(faturado*g.rnd.Float64()*0.3, 2)

			c, err := domain.NewCredito(
				fmt.Sprintf("%s%06d", domain.TestCreditoPrefix, seq),
				numeroNfse,
				domain.DateOf(today.AddDate(0, 0, -g.rnd.IntN(g.days))),
				DefaultTiposCredito[g.rnd.IntN(len(DefaultTiposCredito))],
				g.rnd.IntN(2) == 1,
				utils.RoundDecimal(g.between(1, 15), 2),
				faturado,
				deducao,
			)
			if err != nil {
				return nil, err
			}
			creditos = append(creditos, c)
		}
	}
	return creditos, nil
}

func (g *Generator) between(lo, hi float64) float64 {
	return lo + g.rnd.Float64()*(hi-lo)
}
