// Package suggest turns a batch of fetched videos into ranked title, keyword
// and thumbnail suggestions. Everything here is pure and safe for concurrent
// use.
package suggest
