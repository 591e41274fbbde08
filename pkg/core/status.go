package core

import (
	"fmt"

	"k8s.io/apimachinery/pkg/api/meta"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/llm-d/llm-d-quantity-canon/api/v1alpha1"
)

// SetStatus records the outcome of building c into t in c.Status. err is the
// error Build returned; t is ignored when err is set and required otherwise.
func SetStatus(c *v1alpha1.QuantityCatalog, t *Table, err error) {
	c.Status.ObservedGeneration = c.Generation
	cond := metav1.Condition{
		Type:               v1alpha1.TypeBuilt,
		ObservedGeneration: c.Generation,
	}
	if err != nil {
		c.Status.Counts = v1alpha1.DeclarationCounts{}
		cond.Status = metav1.ConditionFalse
		cond.Reason = v1alpha1.ReasonInvalidDeclaration
		cond.Message = err.Error()
	} else {
		c.Status.Counts = t.Counts()
		cond.Status = metav1.ConditionTrue
		cond.Reason = v1alpha1.ReasonBuildSucceeded
		cond.Message = fmt.Sprintf("Built %d quantities and %d units", t.counts.Quantities, t.counts.Units)
	}
	meta.SetStatusCondition(&c.Status.Conditions, cond)
}
