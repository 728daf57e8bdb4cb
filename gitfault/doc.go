// Package gitfault classifies go-git errors into the "git" category.
//
// Each recognized go-git sentinel has its own Kind, matched with errors.Is
// so wrapped errors classify the same as bare ones. The message of a code
// is the sentinel's text.
package gitfault
