package engine

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/piwi3910/cnc-toolcalc/internal/model"
)

// Entry is one evaluated tool configuration stored in the comparison
// set. Parameters and results are value snapshots taken at Add/Update
// time; later edits to the source records never mutate an entry.
type Entry struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	Cutting model.CuttingParameters `json:"cutting"`
	Cost    model.CostParameters    `json:"cost"`

	ToolLifeMinutes int        `json:"tool_life_minutes"`
	CostResult      CostResult `json:"cost_result"`
	MRR             float64    `json:"mrr"` // mm³/min
}

// Metric selects the ranking dimension for best/worst queries.
type Metric string

const (
	MetricCost     Metric = "cost"      // lower is better
	MetricToolLife Metric = "tool_life" // higher is better
	MetricMRR      Metric = "mrr"       // higher is better
)

// Savings summarizes the spread between the cheapest and the most
// expensive entry by total cost per part.
type Savings struct {
	Cheapest      string `json:"cheapest"`       // entry name
	MostExpensive string `json:"most_expensive"` // entry name

	CostDifference float64 `json:"cost_difference"` // per part
	SavingsPercent float64 `json:"savings_percent"`

	BatchSavings       float64 `json:"batch_savings"`
	SavingsPer100Parts float64 `json:"savings_per_100_parts"`

	// AnnualSavings projects batchesPerYear batches of the cheapest
	// entry's batch size; zero unless that batch size is greater than 1.
	AnnualSavings float64 `json:"annual_savings"`
}

// batchesPerYear is the rough annualization assumption for savings
// projections.
const batchesPerYear = 50

// Aggregator owns an ordered collection of evaluated tool
// configurations and derives ranking and savings views over it.
// All operations are safe for concurrent use; reads work on snapshots.
type Aggregator struct {
	mu      sync.Mutex
	entries []Entry
	added   int // total adds, drives the positional fallback label
}

// NewAggregator returns an empty comparison set.
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Add evaluates the given parameters and appends the result as a new
// entry with a fresh id. The inputs are validated first; on a
// validation error nothing is stored.
func (a *Aggregator) Add(cutting model.CuttingParameters, cost model.CostParameters) (Entry, error) {
	if err := model.ValidateInputs(cutting, cost); err != nil {
		return Entry{}, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.added++
	entry := a.evaluateLocked(uuid.New().String()[:8], cutting, cost)
	a.entries = append(a.entries, entry)
	return entry, nil
}

// Update recomputes the entry with the given id from new parameters,
// preserving its id and position. Returns ErrEntryNotFound when no
// entry matches.
func (a *Aggregator) Update(id string, cutting model.CuttingParameters, cost model.CostParameters) (Entry, error) {
	if err := model.ValidateInputs(cutting, cost); err != nil {
		return Entry{}, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	for i, e := range a.entries {
		if e.ID == id {
			entry := a.evaluateLocked(id, cutting, cost)
			a.entries[i] = entry
			return entry, nil
		}
	}
	return Entry{}, fmt.Errorf("update %q: %w", id, ErrEntryNotFound)
}

// Delete removes the entry with the given id. Returns ErrEntryNotFound
// when no entry matches, so callers can distinguish a no-op.
func (a *Aggregator) Delete(id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i, e := range a.entries {
		if e.ID == id {
			a.entries = append(a.entries[:i], a.entries[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("delete %q: %w", id, ErrEntryNotFound)
}

// Clear empties the comparison set.
func (a *Aggregator) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries = nil
	a.added = 0
}

// Len returns the number of entries.
func (a *Aggregator) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.entries)
}

// Entries returns a copy of the collection in insertion order.
func (a *Aggregator) Entries() []Entry {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Entry, len(a.entries))
	copy(out, a.entries)
	return out
}

// BestBy returns the best entry for the metric (lowest cost, longest
// life, highest MRR). The second result is false when the set is empty.
func (a *Aggregator) BestBy(m Metric) (Entry, bool) {
	return a.scan(m, true)
}

// WorstBy returns the worst entry for the metric.
func (a *Aggregator) WorstBy(m Metric) (Entry, bool) {
	return a.scan(m, false)
}

// Savings compares the cheapest and most expensive entries by total
// cost per part. Requires at least two entries.
func (a *Aggregator) Savings() (Savings, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if len(a.entries) < 2 {
		return Savings{}, ErrNotEnoughEntries
	}

	cheapest := a.entries[0]
	expensive := a.entries[0]
	for _, e := range a.entries[1:] {
		if e.CostResult.TotalCostPerPart < cheapest.CostResult.TotalCostPerPart {
			cheapest = e
		}
		if e.CostResult.TotalCostPerPart > expensive.CostResult.TotalCostPerPart {
			expensive = e
		}
	}

	diff := expensive.CostResult.TotalCostPerPart - cheapest.CostResult.TotalCostPerPart
	percent := 0.0
	if expensive.CostResult.TotalCostPerPart > 0 {
		percent = diff / expensive.CostResult.TotalCostPerPart * 100
	}

	batchSize := cheapest.Cost.EffectiveBatchSize()
	s := Savings{
		Cheapest:           cheapest.Name,
		MostExpensive:      expensive.Name,
		CostDifference:     diff,
		SavingsPercent:     percent,
		BatchSavings:       diff * float64(batchSize),
		SavingsPer100Parts: diff * 100,
	}
	if batchSize > 1 {
		s.AnnualSavings = s.BatchSavings * batchesPerYear
	}
	return s, nil
}

// evaluateLocked builds an entry snapshot. Callers hold the mutex when
// the positional label counter may be read.
func (a *Aggregator) evaluateLocked(id string, cutting model.CuttingParameters, cost model.CostParameters) Entry {
	life := ToolLife(cutting)
	return Entry{
		ID:              id,
		Name:            a.displayName(cutting),
		Cutting:         cutting,
		Cost:            cost,
		ToolLifeMinutes: life,
		CostResult:      CostPerPart(cost, life),
		MRR: MRR(cutting.WidthOfCut, cutting.DepthOfCut, cutting.FeedPerTooth,
			cutting.Teeth, cutting.CuttingSpeed, cutting.ToolDiameter),
	}
}

// displayName picks a label for the entry: explicit name, then brand,
// part name, application, then a positional "Tool N" fallback.
func (a *Aggregator) displayName(cutting model.CuttingParameters) string {
	switch {
	case cutting.Name != "":
		return cutting.Name
	case cutting.Brand != "":
		return cutting.Brand
	case cutting.PartName != "":
		return cutting.PartName
	case cutting.Application != "":
		return cutting.Application
	default:
		return fmt.Sprintf("Tool %d", a.added)
	}
}

func (a *Aggregator) scan(m Metric, best bool) (Entry, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if len(a.entries) == 0 {
		return Entry{}, false
	}

	pick := a.entries[0]
	for _, e := range a.entries[1:] {
		if best && better(e, pick, m) {
			pick = e
		} else if !best && better(pick, e, m) {
			pick = e
		}
	}
	return pick, true
}

// better reports whether x beats y on the metric.
func better(x, y Entry, m Metric) bool {
	switch m {
	case MetricToolLife:
		return x.ToolLifeMinutes > y.ToolLifeMinutes
	case MetricMRR:
		return x.MRR > y.MRR
	default:
		return x.CostResult.TotalCostPerPart < y.CostResult.TotalCostPerPart
	}
}
