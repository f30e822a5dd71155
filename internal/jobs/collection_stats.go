package jobs

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dias221467/Mongo_Exercises/internal/repository"
	"github.com/Dias221467/Mongo_Exercises/internal/services"
	"github.com/Dias221467/Mongo_Exercises/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

type collectionCounter struct {
	name  string
	count func(ctx context.Context) (int64, error)
}

// CollectionStats counts the documents of every exercise collection.
type CollectionStats struct {
	counters []collectionCounter
	gauge    *prometheus.GaugeVec
}

// NewCollectionStats creates a new instance of CollectionStats publishing to gauge.
func NewCollectionStats(
	confessions *services.ConfessionService,
	bucketList *services.BucketListService,
	expenses *services.ExpenseService,
	gauge *prometheus.GaugeVec,
) *CollectionStats {
	return &CollectionStats{
		counters: []collectionCounter{
			{name: repository.ConfessionsCollection, count: confessions.CountConfessions},
			{name: repository.BucketListItemsCollection, count: bucketList.CountItems},
			{name: repository.ExpensesCollection, count: expenses.CountExpenses},
		},
		gauge: gauge,
	}
}

// RunScan updates the gauge for each collection. A failing collection keeps
// its previous value and does not stop the others.
func (s *CollectionStats) RunScan(ctx context.Context) error {
	var errs []error
	fields := logrus.Fields{}

	for _, c := range s.counters {
		n, err := c.count(ctx)
		if err != nil {
			errs = append(errs, fmt.Errorf("failed to count %s: %w", c.name, err))
			continue
		}
		s.gauge.WithLabelValues(c.name).Set(float64(n))
		fields[c.name] = n
	}

	logger.Log.WithFields(fields).Info("Collection stats scan completed")
	return errors.Join(errs...)
}
