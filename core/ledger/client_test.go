package ledger

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newRPCServer returns a client wired to a test node that records each
// incoming JSON-RPC request and answers with the canned result per method.
func newRPCServer(t *testing.T, results map[string]string) (*Client, *[]rpcRequest) {
	t.Helper()
	var requests []rpcRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		requests = append(requests, req)

		result, ok := results[req.Method]
		require.True(t, ok, "unexpected rpc method %s", req.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":"` + req.ID + `","result":` + result + `}`))
	}))
	t.Cleanup(server.Close)
	return NewClient(Config{Endpoint: server.URL, TimeoutSeconds: 5}), &requests
}

func TestClient_GetOwnedObjects(t *testing.T) {
	client, requests := newRPCServer(t, map[string]string{
		"suix_getOwnedObjects": `{
			"data": [
				{"data": {
					"objectId": "0x1",
					"version": "7",
					"type": "0xaaa::nft::NFT",
					"owner": {"AddressOwner": "0xowner"},
					"content": {"dataType": "moveObject", "type": "0xaaa::nft::NFT", "fields": {"name": "Cat"}},
					"display": {"data": {"image_url": "https://img/cat.png"}}
				}},
				{"data": null}
			]
		}`,
	})

	objects, err := client.GetOwnedObjects(context.Background(), "0xowner", "0xaaa::nft::NFT")
	require.NoError(t, err)
	require.Len(t, objects, 1)

	obj := objects[0]
	assert.Equal(t, "0x1", obj.ObjectID)
	assert.Equal(t, "7", obj.Version)
	assert.Equal(t, "0xaaa::nft::NFT", obj.Type)
	assert.Equal(t, "0xowner", obj.Owner)
	assert.Equal(t, "Cat", obj.Content["name"])
	assert.Equal(t, "https://img/cat.png", obj.Display["image_url"])

	require.Len(t, *requests, 1)
	req := (*requests)[0]
	assert.Equal(t, "2.0", req.JSONRPC)
	assert.NotEmpty(t, req.ID)
	require.Len(t, req.Params, 2)
	assert.Equal(t, "0xowner", req.Params[0])
}

func TestClient_GetOwnedObjects_ObjectOwner(t *testing.T) {
	client, _ := newRPCServer(t, map[string]string{
		"suix_getOwnedObjects": `{
			"data": [{"data": {"objectId": "0x1", "type": "0xaaa::nft::NFT", "owner": {"ObjectOwner": "0xparent"}}}]
		}`,
	})

	objects, err := client.GetOwnedObjects(context.Background(), "0xowner", "0xaaa::nft::NFT")
	require.NoError(t, err)
	require.Len(t, objects, 1)
	assert.Equal(t, "0xparent", objects[0].Owner)
}

func TestClient_QueryEvents(t *testing.T) {
	client, requests := newRPCServer(t, map[string]string{
		"suix_queryEvents": `{
			"data": [
				{
					"id": {"txDigest": "digest-1"},
					"type": "0xaaa::marketplace::ItemListed",
					"parsedJson": {"item_id": "0x1", "price": "100"},
					"timestampMs": "1700000000000"
				},
				{
					"id": {"txDigest": "digest-2"},
					"type": "0xaaa::marketplace::ItemListed",
					"parsedJson": {"item_id": "0x2"},
					"timestampMs": "not-a-number"
				}
			]
		}`,
	})

	events, err := client.QueryEvents(context.Background(), "0xaaa::marketplace::ItemListed", 50, true)
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, "digest-1", events[0].TxDigest)
	assert.Equal(t, int64(1700000000000), events[0].TimestampMs)
	assert.Equal(t, "0x1", events[0].ParsedJSON["item_id"])
	// Unparsable timestamps degrade to zero instead of failing the query.
	assert.Zero(t, events[1].TimestampMs)

	req := (*requests)[0]
	require.Len(t, req.Params, 4)
	filter, ok := req.Params[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "0xaaa::marketplace::ItemListed", filter["MoveEventType"])
	assert.Equal(t, float64(50), req.Params[2])
	assert.Equal(t, true, req.Params[3])
}

func TestClient_GetObject(t *testing.T) {
	t.Run("Live", func(t *testing.T) {
		client, _ := newRPCServer(t, map[string]string{
			"sui_getObject": `{
				"data": {
					"objectId": "0x1",
					"content": {"dataType": "moveObject", "type": "0xaaa::nft::NFT", "fields": {"name": "Cat"}}
				}
			}`,
		})

		obj, err := client.GetObject(context.Background(), "0x1")
		require.NoError(t, err)
		require.NotNil(t, obj)
		assert.Equal(t, "0x1", obj.ObjectID)
		// The envelope type fills in when the top-level type is absent.
		assert.Equal(t, "0xaaa::nft::NFT", obj.Type)
	})

	t.Run("Deleted", func(t *testing.T) {
		client, _ := newRPCServer(t, map[string]string{
			"sui_getObject": `{"error": {"code": "deleted"}}`,
		})

		obj, err := client.GetObject(context.Background(), "0xgone")
		require.NoError(t, err)
		assert.Nil(t, obj)
	})
}

func TestClient_ExecuteTransaction(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		client, _ := newRPCServer(t, map[string]string{
			"sui_executeTransactionIntent": `{
				"digest": "digest-1",
				"effects": {
					"status": {"status": "success"},
					"created": [
						{"reference": {"objectId": "0xminted"}, "objectType": "0xaaa::nft::NFT"}
					]
				}
			}`,
		})

		res, err := client.ExecuteTransaction(context.Background(), &TransactionIntent{Target: "0xaaa::nft::mint_nft"})
		require.NoError(t, err)
		assert.True(t, res.Succeeded())
		assert.Equal(t, "digest-1", res.Digest)
		require.Len(t, res.Created, 1)
		assert.Equal(t, "0xminted", res.Created[0].ObjectID)
		assert.Equal(t, "0xaaa::nft::NFT", res.Created[0].Type)
	})

	t.Run("Failure", func(t *testing.T) {
		client, _ := newRPCServer(t, map[string]string{
			"sui_executeTransactionIntent": `{
				"digest": "digest-2",
				"effects": {"status": {"status": "failure", "error": "MoveAbort(7)"}}
			}`,
		})

		res, err := client.ExecuteTransaction(context.Background(), &TransactionIntent{})
		require.NoError(t, err)
		assert.False(t, res.Succeeded())
		assert.Equal(t, "MoveAbort(7)", res.FailureReason)
	})
}

func TestClient_NodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":"1","error":{"code":-32602,"message":"invalid params"}}`))
	}))
	t.Cleanup(server.Close)
	client := NewClient(Config{Endpoint: server.URL, TimeoutSeconds: 5})

	_, err := client.GetObject(context.Background(), "0x1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid params")
}

func TestClient_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(server.Close)
	client := NewClient(Config{Endpoint: server.URL, TimeoutSeconds: 5})

	_, err := client.GetObject(context.Background(), "0x1")
	assert.Error(t, err)
}
