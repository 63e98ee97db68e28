// Package schedule provides cancellable delayed tasks. Timer runs tasks on
// wall-clock timers; Manual keeps virtual time so tests can advance it
// deterministically.
package schedule
