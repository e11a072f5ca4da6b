package news

import "strings"

var coinNames = map[string]string{
	"BTC":  "Bitcoin",
	"ETH":  "Ethereum",
	"BNB":  "Binance Coin",
	"ADA":  "Cardano",
	"DOGE": "Dogecoin",
	"XRP":  "Ripple",
	"SOL":  "Solana",
	"DOT":  "Polkadot",
	"AVAX": "Avalanche",
}

// ResolveCoinName maps a ticker to its display name. Unknown input is
// returned as is.
func ResolveCoinName(symbol string) string {
	if name, ok := coinNames[strings.ToUpper(symbol)]; ok {
		return name
	}
	return symbol
}
