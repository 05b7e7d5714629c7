package peerseal

import (
	"sort"
	"sync"
)

// Keyring is an in-memory registry of verified peer identities with a cache
// of precomputed shared keys, all relative to one local identity. It is safe
// for concurrent use. A Keyring holds everything in memory and never writes
// key material anywhere.
type Keyring struct {
	mu     sync.RWMutex
	local  *SecretID
	peers  map[PublicID]IdentityCard
	shared map[PublicID]*SharedSecretKey
}

// NewKeyring creates a keyring around the given local identity.
func NewKeyring(local *SecretID) *Keyring {
	return &Keyring{
		local:  local,
		peers:  make(map[PublicID]IdentityCard),
		shared: make(map[PublicID]*SharedSecretKey),
	}
}

// Local returns the keyring's own identity.
func (k *Keyring) Local() *SecretID {
	return k.local
}

// AddPeer verifies card and registers the identity it introduces. Cards
// that fail verification are rejected and the keyring is left unchanged.
// Re-adding a peer replaces the stored card; a cached shared key stays
// valid because the card introduces the same keys.
func (k *Keyring) AddPeer(card IdentityCard) error {
	if err := card.Verify(); err != nil {
		return err
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	k.peers[card.PublicID] = card
	return nil
}

// Peer returns the stored card for id.
func (k *Keyring) Peer(id PublicID) (IdentityCard, bool) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	card, ok := k.peers[id]
	return card, ok
}

// Peers returns all stored cards sorted by identity order.
func (k *Keyring) Peers() []IdentityCard {
	k.mu.RLock()
	defer k.mu.RUnlock()

	cards := make([]IdentityCard, 0, len(k.peers))
	for _, card := range k.peers {
		cards = append(cards, card)
	}
	sort.Slice(cards, func(i, j int) bool {
		return cards[i].PublicID.Compare(cards[j].PublicID) < 0
	})
	return cards
}

// SharedKey returns the shared key between the local identity and a
// registered peer. The key is precomputed on first use and cached, so
// repeated calls for the same peer return the same *SharedSecretKey. It
// returns ErrUnknownPeer for identities not added with AddPeer.
func (k *Keyring) SharedKey(peer PublicID) (*SharedSecretKey, error) {
	k.mu.RLock()
	key, ok := k.shared[peer]
	k.mu.RUnlock()
	if ok {
		return key, nil
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	if key, ok := k.shared[peer]; ok {
		return key, nil
	}
	if _, ok := k.peers[peer]; !ok {
		return nil, ErrUnknownPeer
	}
	key = k.local.SharedKey(peer)
	k.shared[peer] = key
	return key, nil
}

// RemovePeer drops the stored card and any cached shared key for id.
// Removing an unknown peer is a no-op.
func (k *Keyring) RemovePeer(id PublicID) {
	k.mu.Lock()
	defer k.mu.Unlock()
	delete(k.peers, id)
	delete(k.shared, id)
}
