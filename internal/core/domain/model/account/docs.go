// Package account contains the delivery-person account aggregate.
//
// An account mirrors one delivery person and carries the running balance
// their ledger transactions settle against. Deposits credit the balance on
// approval, withdrawals debit it, and the balance never goes negative.
package account
