// Package debounce delays a call until its input has been quiet for a fixed
// interval. Each Trigger restarts the timer and replaces the pending value,
// so only the last value of a burst reaches the callback.
package debounce
