// Package wordlist reads and writes the newline-delimited word-list file
// shared by the tokenizer and the counter.
//
// The format is one token per line, each terminated by '\n', with no header
// and no escaping. Writers hold an exclusive advisory lock on the word-list
// file itself for the lifetime of the write; readers take a shared lock so
// they never observe a file that is being truncated or rewritten. No other
// file is created next to the word list.
package wordlist
