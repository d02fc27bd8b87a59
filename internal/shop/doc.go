// Package shop runs the interactive storefront session.
//
// A Session is the single writer over the cart store: its Run loop
// reads one command, processes it to completion (mutation plus
// re-rendered view), and only then reads the next. That gives every
// reader a consistent post-mutation snapshot without locking.
//
// The session is also the view state machine of the storefront:
// PRODUCT_LIST, PRODUCT_DETAIL, CART, and CHECKOUT, navigated by
// commands instead of clicks.
package shop
