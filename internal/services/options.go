package services

import (
	"time"

	"todo-list/internal/validation"
)

type options struct {
	strict        bool
	queryTimeout  time.Duration
	taskValidator *validation.TaskValidator
}

// Option configures a TaskService
type Option func(*options)

// WithStrict makes transitions on a missing name return a not_found error
func WithStrict(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}

// WithQueryTimeout bounds each store call. Only the sqlite backend blocks.
func WithQueryTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.queryTimeout = timeout
	}
}

// WithTaskValidator replaces the default name validator
func WithTaskValidator(validator *validation.TaskValidator) Option {
	return func(o *options) {
		o.taskValidator = validator
	}
}

func newOptions(opts []Option) options {
	o := options{
		queryTimeout:  5 * time.Second,
		taskValidator: validation.NewTaskValidator(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
