package forecast

import (
	"runtime"
	"sync"

	"github.com/sirupsen/logrus"

	"property-forecast/internal/bond"
	"property-forecast/internal/model"
	"property-forecast/internal/scenario"
)

type Options struct {
	// SeedFundWithDeposit invests the deposit and closing costs in the fund
	// at month 0 instead of starting it empty.
	SeedFundWithDeposit bool `yaml:"seed_fund_with_deposit" json:"seed_fund_with_deposit"`
}

// Result is everything one run produces.
type Result struct {
	Label       string                   `json:"label"`
	Assumptions model.AssumptionSet      `json:"assumptions"`
	Schedule    bond.Schedule            `json:"-"`
	Ledger      []scenario.PropertyMonth `json:"-"`
	Comparison  *ComparisonResult        `json:"comparison"`
}

// Variant is one labelled input of a batch.
type Variant struct {
	Label       string
	Assumptions model.Assumptions
}

// BatchResult pairs a variant with its outcome. Exactly one of Result and
// Err is set.
type BatchResult struct {
	Variant Variant
	Result  *Result
	Err     error
}

type Engine struct {
	log  logrus.FieldLogger
	opts Options
}

func New(log logrus.FieldLogger, opts Options) *Engine {
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = l
	}
	return &Engine{log: log, opts: opts}
}

// Run validates the assumptions, simulates both scenarios and compares them.
func (e *Engine) Run(label string, a model.Assumptions) (*Result, error) {
	set, err := model.NewAssumptionSet(a)
	if err != nil {
		return nil, err
	}
	return e.RunSet(label, set)
}

// RunSet is Run for an already validated set.
func (e *Engine) RunSet(label string, set model.AssumptionSet) (*Result, error) {
	log := e.log.WithField("label", label)
	log.WithFields(logrus.Fields{
		"horizon_months": set.HorizonMonths,
		"seed_fund":      e.opts.SeedFundWithDeposit,
	}).Info("forecasting scenario")

	prop := scenario.NewProperty()
	fund := scenario.NewIndexFund(e.opts.SeedFundWithDeposit)

	run := prop.Run(set)
	for _, row := range run.Ledger {
		if row.CashFlow < 0 {
			log.WithFields(logrus.Fields{
				"month":     row.Month,
				"cash_flow": row.CashFlow,
			}).Warn("property cash flow is negative")
			break
		}
	}

	cmp, err := Compare(run.Series, fund.Simulate(set))
	if err != nil {
		return nil, err
	}
	if m := cmp.Summary.CrossoverMonth; m != nil {
		log.WithField("month", *m).Debug("scenarios cross over")
	}

	return &Result{
		Label:       label,
		Assumptions: set,
		Schedule:    run.Schedule,
		Ledger:      run.Ledger,
		Comparison:  cmp,
	}, nil
}

// RunBatch runs every variant independently and returns the outcomes in
// input order. An invalid variant only fails its own slot.
func (e *Engine) RunBatch(variants []Variant) []BatchResult {
	out := make([]BatchResult, len(variants))
	sem := make(chan struct{}, runtime.GOMAXPROCS(0))
	var wg sync.WaitGroup
	for i, v := range variants {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, v Variant) {
			defer wg.Done()
			defer func() { <-sem }()
			res, err := e.Run(v.Label, v.Assumptions)
			out[i] = BatchResult{Variant: v, Result: res, Err: err}
		}(i, v)
	}
	wg.Wait()

	for _, r := range out {
		if r.Err != nil {
			e.log.WithField("label", r.Variant.Label).WithError(r.Err).Warn("variant skipped")
		}
	}
	return out
}
