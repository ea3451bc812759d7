package processors

import (
	"github.com/username/propfolio/backend/src/models"
)

// Evaluator defines the interface for the basic cents-based evaluation.
type Evaluator interface {
	Evaluate(input models.EvaluationInput) models.EvaluationOutput
}

// AdvancedEvaluator defines the interface for the whole-franc advanced
// evaluation.
type AdvancedEvaluator interface {
	Evaluate(input models.AdvancedEvaluationInput) models.AdvancedEvaluationOutput
}

// ROICalculator defines the interface for the standalone ROI metrics.
type ROICalculator interface {
	Calculate(input models.ROIInput) models.ROIOutput
}
