package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"rental/internal/core/application/usecases/queries"
)

// DefaultOverdueCheckSpec runs the overdue scan at the top of every hour.
const DefaultOverdueCheckSpec = "0 * * * *"

// OverdueOrdersJob periodically scans for approved orders whose rental
// period has ended without the car being returned, and reports each one so
// operators can chase the customer.
type OverdueOrdersJob struct {
	handler queries.GetOverdueOrdersQueryHandler
	cron    *cron.Cron
	spec    string
	logger  *logrus.Logger
}

// NewOverdueOrdersJob creates the overdue scan job with the given cron spec.
// An empty spec falls back to DefaultOverdueCheckSpec.
func NewOverdueOrdersJob(
	handler queries.GetOverdueOrdersQueryHandler,
	spec string,
	logger *logrus.Logger,
) *OverdueOrdersJob {
	if spec == "" {
		spec = DefaultOverdueCheckSpec
	}

	return &OverdueOrdersJob{
		handler: handler,
		cron:    cron.New(),
		spec:    spec,
		logger:  logger,
	}
}

// Start schedules the overdue scan and runs one scan immediately so a
// restart does not delay the first report by a full interval.
func (j *OverdueOrdersJob) Start() error {
	if _, err := j.cron.AddFunc(j.spec, j.scan); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.WithField("spec", j.spec).Info("Overdue orders job started")

	go j.scan()
	return nil
}

// Stop stops the scheduled scans.
func (j *OverdueOrdersJob) Stop() {
	j.cron.Stop()
	j.logger.Info("Overdue orders job stopped")
}

func (j *OverdueOrdersJob) scan() {
	ctx := context.Background()

	query, err := queries.NewGetOverdueOrdersQuery(time.Now().UTC())
	if err != nil {
		j.logger.WithError(err).Error("Failed to build overdue orders query")
		return
	}

	overdue, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.WithError(err).Error("Overdue orders scan failed")
		return
	}

	for _, entry := range overdue {
		j.logger.WithFields(logrus.Fields{
			"order_id":       entry.OrderID.String(),
			"end_date_time":  entry.EndDateTime,
			"customer_name":  entry.CustomerName,
			"customer_phone": entry.CustomerPhone,
			"car_plate":      entry.CarPlate,
		}).Warn("Rental order is overdue")
	}
}
