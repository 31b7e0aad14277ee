package metrics

// Package-level recording functions over the global manager, matching the
// call-site style used throughout the service.

// RecordSurveyScored increments the scored-survey counter.
func RecordSurveyScored() { globalManager.surveysScored.Inc() }

// RecordTableGap increments the factor-table gap counter.
func RecordTableGap() { globalManager.tableGaps.Inc() }

// RecordAggregation increments the completed-aggregation counter.
func RecordAggregation() { globalManager.aggregations.Inc() }

// RecordAggregationFetchFailure increments the failed category fetch counter.
func RecordAggregationFetchFailure() { globalManager.aggregationFetchErrs.Inc() }

// RecordAggregationPersistFailure increments the failed snapshot write counter.
func RecordAggregationPersistFailure() { globalManager.aggregationWriteErrs.Inc() }

// RecordCoercionAnomaly increments the unparseable-stored-value counter.
func RecordCoercionAnomaly() { globalManager.coercionAnomalies.Inc() }

// RecordAggregationLatency observes aggregation latency in milliseconds.
func RecordAggregationLatency(ms float64) { globalManager.aggregationLatency.Observe(ms) }

// RecordHabitCompletion increments the habit completion counter.
func RecordHabitCompletion() { globalManager.habitCompletions.Inc() }

// RecordHabitPersistFailure increments the habit snapshot write failure counter.
func RecordHabitPersistFailure() { globalManager.habitWriteErrs.Inc() }

// UpdateHabitCards sets the habit card gauge.
func UpdateHabitCards(n int) { globalManager.habitCards.Set(float64(n)) }

// RecordQueueEnqueue increments the enqueue counter.
func RecordQueueEnqueue() { globalManager.queueEnqueues.Inc() }

// RecordQueueDequeue increments the dequeue counter.
func RecordQueueDequeue() { globalManager.queueDequeues.Inc() }

// RecordQueueEnqueueError increments the rejected-enqueue counter.
func RecordQueueEnqueueError() { globalManager.queueEnqueueErrs.Inc() }

// UpdateQueueSize sets the queue size gauge.
func UpdateQueueSize(n int) { globalManager.queueSize.Set(float64(n)) }

// UpdateQueueCapacity sets the queue capacity gauge.
func UpdateQueueCapacity(n int) { globalManager.queueCapacity.Set(float64(n)) }

// UpdateQueueUtilization sets the queue utilization gauge.
func UpdateQueueUtilization(ratio float64) { globalManager.queueUtilization.Set(ratio) }

// UpdateWorkerCount sets the worker gauge.
func UpdateWorkerCount(n int) { globalManager.workerCount.Set(float64(n)) }

// RecordWorkerError increments the failed-job counter.
func RecordWorkerError() { globalManager.workerErrors.Inc() }

// RecordWorkerProcessingLatency observes job processing latency in milliseconds.
func RecordWorkerProcessingLatency(ms float64) { globalManager.workerLatency.Observe(ms) }

// UpdatePendingRecomputes sets the claimed-job gauge.
func UpdatePendingRecomputes(n int64) { globalManager.pendingRecomputes.Set(float64(n)) }

// UpdateRepositoryRecords sets the stored-document gauge.
func UpdateRepositoryRecords(n int) { globalManager.repositoryRecords.Set(float64(n)) }

// UpdateRepositoryShardCount sets the shard gauge.
func UpdateRepositoryShardCount(n int) { globalManager.repositoryShards.Set(float64(n)) }

// RecordHTTPRequest increments the request counter for one endpoint.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration observes request duration in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, ms float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(ms)
}

// UpdateSystemMemoryUsage sets the allocated heap gauge.
func UpdateSystemMemoryUsage(bytes uint64) { globalManager.systemMemoryUsage.Set(float64(bytes)) }

// UpdateSystemGoroutineCount sets the goroutine gauge.
func UpdateSystemGoroutineCount(n int) { globalManager.systemGoroutineCount.Set(float64(n)) }

// RecordSystemGCPauseTime observes average GC pause time in milliseconds.
func RecordSystemGCPauseTime(ms float64) { globalManager.systemGCPauseTime.Observe(ms) }
