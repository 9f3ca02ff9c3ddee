package errors

var (
	// Domain errors used in usecase/repository
	ErrKeysNotFound       = NotFound("key bundle not found")
	ErrPublicKeyNotFound  = NotFound("public key not found")
	ErrMissingUserID      = InvalidArg("user id is required")
	ErrMissingPeerID      = InvalidArg("peer user id is required")
	ErrMissingPublicKey   = InvalidArg("public key is required")
	ErrMissingPrivateKey  = InvalidArg("encrypted private key is required")
	ErrMissingCipherText  = InvalidArg("cipher text is required")
	ErrMissingIV          = InvalidArg("iv is required")
	ErrMissingMessage     = InvalidArg("message is required")
	ErrMissingNonce       = InvalidArg("nonce is required")
	ErrSelfConversation   = InvalidArg("sender and receiver must differ")
	ErrInvalidAccessToken = Unauthorized("invalid or expired token")
)

func ErrKeyUpsertFailed(cause error) error {
	return Wrap(CodeInternal, "failed to store keys", cause)
}

func ErrPassphraseUpsertFailed(cause error) error {
	return Wrap(CodeInternal, "failed to store passphrase", cause)
}

func ErrMessagePersistFailed(cause error) error {
	return Wrap(CodeInternal, "failed to store message", cause)
}
