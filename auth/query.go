package auth

// QueryAccountRequest is the carrier for the node's account query.
type QueryAccountRequest struct {
	Address string `json:"address"`
}

// QueryAccountResponse wraps the queried account. Account is nil when the
// address is unknown to the chain.
type QueryAccountResponse struct {
	Account *BaseAccount `json:"account"`
}
