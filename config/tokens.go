package config

import "time"

// Tokens configures refresh behavior for credential token sources.
type Tokens struct {
	// EarlyRefreshMargin refreshes tokens this long before their hard expiry.
	EarlyRefreshMargin *HumanDuration `json:"early_refresh_margin,omitempty" yaml:"early_refresh_margin,omitempty"`

	// RefreshInBackground enables the worker task that refreshes expiring credentials.
	RefreshInBackground *bool `json:"refresh_in_background,omitempty" yaml:"refresh_in_background,omitempty"`

	// RefreshCronSchedule is the cron schedule used by the background refresh task.
	RefreshCronSchedule string `json:"refresh_cron_schedule,omitempty" yaml:"refresh_cron_schedule,omitempty"`

	// UseDistributedLock serializes refreshes across processes using a redis lock. Requires the redis
	// block to be configured.
	UseDistributedLock *bool `json:"use_distributed_lock,omitempty" yaml:"use_distributed_lock,omitempty"`
}

func (t *Tokens) GetEarlyRefreshMarginOrDefault() time.Duration {
	if t == nil || t.EarlyRefreshMargin == nil {
		return time.Minute
	}

	return t.EarlyRefreshMargin.Duration
}

func (t *Tokens) GetRefreshInBackgroundOrDefault() bool {
	if t == nil || t.RefreshInBackground == nil {
		return false
	}

	return *t.RefreshInBackground
}

func (t *Tokens) GetRefreshCronScheduleOrDefault() string {
	if t == nil || t.RefreshCronSchedule == "" {
		return "@every 30m"
	}

	return t.RefreshCronSchedule
}

func (t *Tokens) GetUseDistributedLockOrDefault() bool {
	if t == nil || t.UseDistributedLock == nil {
		return false
	}

	return *t.UseDistributedLock
}
