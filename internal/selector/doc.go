// Package selector computes the table picker of the booking form: the
// combined capacity of the selected tables, the seats still needed, and
// membership toggling that refuses tables that are not free for the slot.
//
// PointerDown, Click and Done model the picker's open and close gestures
// for interactive front ends. The CLI runs the picker as a prompt loop
// and only reaches Toggle, through the booking form.
package selector
