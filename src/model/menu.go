package model

import "strings"

type MenuChoice string

const MenuPriceTrend MenuChoice = "1"
const MenuTradingVolume MenuChoice = "2"
const MenuMarketCapPie MenuChoice = "3"
const MenuExit MenuChoice = "4"

type MenuOption struct {
	Choice MenuChoice
	Title  string
}

func MenuOptions() []MenuOption {
	return []MenuOption{
		{Choice: MenuPriceTrend, Title: "BTC vs ETH Price Trend"},
		{Choice: MenuTradingVolume, Title: "BTC vs ETH Trading Volume"},
		{Choice: MenuMarketCapPie, Title: "Crypto Market Cap Pie Chart"},
		{Choice: MenuExit, Title: "Exit"},
	}
}

func ParseMenuChoice(input string) MenuChoice {
	return MenuChoice(strings.TrimSpace(input))
}
