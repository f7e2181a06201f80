package gamedata

// Item IDs referenced outside the item table.
const (
	ItemBook          = 340
	ItemEnchantedBook = 403
)

type Item struct {
	ID          int
	Name        string
	DisplayName string
	StackSize   int
}
