// Package message turns item note annotations into page tables and walks them.
//
// A note carries one or more blocks of the form
//
//	<Item Message>
//	text
//	</Item Message>
//
//	<Item Message: Page 2>
//	text
//	</Item Message>
//
// Tag names MESSAGE ITEM and ITEM MESSAGE are interchangeable and matched
// without regard to case.
package message
