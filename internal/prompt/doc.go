// Package prompt collects the operator's answers.
//
// LinePrompter prints each question and reads one line of input; it is the
// default and works with piped input. FormPrompter shows every question at
// once in a terminal form and then serves Ask calls from the submitted
// values, so the bootstrap sequence is identical for both.
package prompt
