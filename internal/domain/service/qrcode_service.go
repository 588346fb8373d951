package service

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateStorefrontQR encodes a public storefront URL as a PNG QR code
	GenerateStorefrontQR(storefrontURL string) ([]byte, error)
}
