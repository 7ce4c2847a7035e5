// Package trainer runs the question/answer/feedback loop of a training
// session.
//
// # Core Components
//
// Session: One training run, discriminated by Kind (random practice,
// dealer-strength focus, hand-type focus, or the absolutes drill) and
// carrying only the data its kind needs.
//
// Prompter: The interface the loop uses to talk to the user. The terminal
// front end implements it with pterm; tests implement it with a script.
//
// Run: The single orchestrator. It generates a scenario, asks the
// prompter, scores the answer against the chart, records the outcome and
// shows the explanation on a miss. A session ends when it reaches its
// question count or when the prompter signals a quit; both are normal
// terminations.
package trainer
